// Package board holds the terminal view of the memo list: grouping by
// creation date, the status toggle and the checks of the creation form.
package board

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/ferdiebergado/memoboard/internal/memo"
	timex "github.com/ferdiebergado/memoboard/internal/pkg/time"
)

var (
	ErrTitleEmpty = errors.New("Adicione o lembrete.")
	ErrDateFormat = errors.New("Formato de data inválido. Use dd/mm/aaaa.")
	ErrMonth      = errors.New("Mês inválido.")
	ErrDay        = errors.New("Dia inválido para o mês especificado.")
	ErrPastDate   = errors.New("A data não pode estar no passado.")
)

var dateRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// Group is the memos sharing one created_at value.
type Group struct {
	Date  string
	Memos []memo.Memo
}

// GroupByCreatedAt buckets memos by their exact created_at string. Groups
// are ordered newest date first; groups whose date does not parse come
// last, ordered by their key. Memos keep their order inside a group.
func GroupByCreatedAt(memos []memo.Memo) []Group {
	index := make(map[string]int)
	var groups []Group
	for _, m := range memos {
		i, ok := index[m.CreatedAt]
		if !ok {
			i = len(groups)
			index[m.CreatedAt] = i
			groups = append(groups, Group{Date: m.CreatedAt})
		}
		groups[i].Memos = append(groups[i].Memos, m)
	}

	slices.SortStableFunc(groups, func(a, b Group) int {
		ta, errA := timex.ParseDate(a.Date, time.UTC)
		tb, errB := timex.ParseDate(b.Date, time.UTC)
		switch {
		case errA == nil && errB == nil:
			return tb.Compare(ta)
		case errA == nil:
			return -1
		case errB == nil:
			return 1
		default:
			return cmp.Compare(a.Date, b.Date)
		}
	})

	return groups
}

// Toggle flips a pending memo to done. Every other status goes back to pending.
func Toggle(status string) string {
	if status == memo.StatusPending {
		return memo.StatusDone
	}
	return memo.StatusPending
}

// ValidateFormTitle rejects an empty title, like the required input of the form.
func ValidateFormTitle(title string) error {
	if title == "" {
		return ErrTitleEmpty
	}
	return nil
}

// ValidateFormDate checks a date typed into the creation form. An empty
// input is accepted and means today. The checks run in order: layout,
// month, day within the month, and not before today in loc.
func ValidateFormDate(input string, now time.Time, loc *time.Location) error {
	if input == "" {
		return nil
	}

	if !dateRe.MatchString(input) {
		return ErrDateFormat
	}

	parts := strings.Split(input, "/")
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])

	if month < 1 || month > 12 {
		return ErrMonth
	}

	if day < 1 || day > daysIn(year, time.Month(month)) {
		return ErrDay
	}

	if loc == nil {
		loc = time.Local
	}
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)
	if date.Before(timex.StartOfDay(now, loc)) {
		return ErrPastDate
	}

	return nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Render prints the grouped memo list.
func Render(w io.Writer, memos []memo.Memo) error {
	if len(memos) == 0 {
		_, err := fmt.Fprintln(w, "Nenhum lembrete.")
		return err
	}

	for i, g := range GroupByCreatedAt(memos) {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w, g.Date); err != nil {
			return err
		}

		for _, m := range g.Memos {
			mark := " "
			if m.Status == memo.StatusDone {
				mark = "x"
			}
			if _, err := fmt.Fprintf(w, "  [%s] #%d %s - %s\n", mark, m.ID, m.Title, m.Status); err != nil {
				return err
			}
		}
	}

	return nil
}
