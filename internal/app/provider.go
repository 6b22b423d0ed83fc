package app

import (
	"fmt"
	"time"

	"github.com/ferdiebergado/memoboard/internal/config"
	timex "github.com/ferdiebergado/memoboard/internal/pkg/time"
	"github.com/ferdiebergado/memoboard/internal/platform/router"
	"github.com/ferdiebergado/memoboard/internal/platform/validation"
)

type Provider struct {
	Validator validation.Validator
	Router    router.Router
	Location  *time.Location
	Clock     func() time.Time
}

func newProvider(cfg *config.Config) (*Provider, error) {
	loc, err := timex.LoadLocation(cfg.Memo.Timezone)
	if err != nil {
		return nil, fmt.Errorf("memo timezone: %w", err)
	}

	provider := &Provider{
		Validator: validation.NewGoPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
		Location:  loc,
		Clock:     time.Now,
	}

	return provider, nil
}
