package model

// APIUser owns devices in the inventory. It is inventory data, not an
// authentication subject.
type APIUser struct {
	ID       APIUserID
	Name     string
	Email    string
	Password string
}

func NewAPIUser(name, email, password string) *APIUser {
	return &APIUser{
		Name:     name,
		Email:    email,
		Password: password,
	}
}

// APIUserPatch carries the fields of a partial update; nil means unchanged.
type APIUserPatch struct {
	Name     *string
	Email    *string
	Password *string
}

func (p APIUserPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Password == nil
}

func (u *APIUser) Apply(patch APIUserPatch) {
	if patch.Name != nil {
		u.Name = *patch.Name
	}

	if patch.Email != nil {
		u.Email = *patch.Email
	}

	if patch.Password != nil {
		u.Password = *patch.Password
	}
}
