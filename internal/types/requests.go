package types

// SignupRequest is the payload for POST /api/auth/signup.
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest carries the optional profile fields for
// PUT /api/user. Nil means "leave unchanged".
type UpdateProfileRequest struct {
	Bio      *string `json:"bio"`
	Role     *string `json:"role"`
	Location *string `json:"location"`
	Website  *string `json:"website"`
	Avatar   *string `json:"avatar"`
}

// Empty reports whether no field was supplied.
func (r *UpdateProfileRequest) Empty() bool {
	return r.Bio == nil && r.Role == nil && r.Location == nil &&
		r.Website == nil && r.Avatar == nil
}

// CreditRequest is the payload for the credit add/spend operations.
type CreditRequest struct {
	Amount int `json:"amount"`
}

// CreateSkillRequest is the payload for POST /api/user/skills.
type CreateSkillRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Hours       float64 `json:"hours"`
}

// UpdateSkillRequest carries the optional skill fields for
// PUT /api/user/skills/:id. Nil means "leave unchanged".
type UpdateSkillRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Hours       *float64 `json:"hours"`
}

// Empty reports whether no field was supplied.
func (r *UpdateSkillRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Category == nil &&
		r.Hours == nil
}

// SendMessageRequest is the payload for POST /api/chats/:userId.
type SendMessageRequest struct {
	Text string `json:"text"`
}
