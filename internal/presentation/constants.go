package presentation

const (
	KeyUserID = "userId"

	IDParam   = "id"
	TagsQuery = "tags"

	ReasonTag = "X-Reason"
)
