package cms

// RequestContext identifies who performs CMS operations and in which project
type RequestContext struct {
	CurrentUser    User
	CurrentProject Project
}
