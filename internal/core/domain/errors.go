package domain

import "errors"

// Authorization denials. These are the only auth errors surfaced to clients;
// token verification failures are recovered inside the authentication
// middleware and never escape it.
var (
	ErrAuthenticationRequired = errors.New("full authentication is required to access this resource")
	ErrInsufficientRole       = errors.New("access denied: insufficient role")
)

// Credential errors.
var (
	ErrInvalidCredentials = errors.New("bad credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already in use")
	ErrRoleNotFound       = errors.New("role not found")
)

// Catalog, address and cart errors.
var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrCategoryExists    = errors.New("category already exists")
	ErrProductNotFound   = errors.New("product not found")
	ErrProductExists     = errors.New("product already exists in this category")
	ErrAddressNotFound   = errors.New("address not found")
	ErrCartNotFound      = errors.New("cart not found")
	ErrProductNotInCart  = errors.New("product not present in cart")
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")
	ErrNotResourceOwner  = errors.New("resource belongs to another user")
)
