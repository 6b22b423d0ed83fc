package memo

const (
	MsgTitleEmpty      = `The field "title" cannot be empty.`
	MsgStatusMandatory = `The field "status" is mandatory.`
	MsgStatusEmpty     = `The field "status" cannot be empty.`
	MsgNotFound        = "Memo not found"
)
