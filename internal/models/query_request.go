package models

// QueryRequest carries one assembled statement and the credentials it
// is dispatched with.
type QueryRequest struct {
	Statement string
	User      string
	Password  string
}
