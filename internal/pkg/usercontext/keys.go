package usercontext

// Keys used in fiber Locals for user context data
const (
	KeyUserContext = "USER_CONTEXT"
	KeyUserID      = "USER_ID"
	KeyUserName    = "USER_NAME"
)
