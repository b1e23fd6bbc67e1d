package domain

// Session is what a bearer token resolves to. Anonymous sessions (UserID 0)
// can compute recommendations; only registered users get persisted history.
type Session struct {
	UserID    int64 `json:"userId"`
	Anonymous bool  `json:"anonymous"`
}
