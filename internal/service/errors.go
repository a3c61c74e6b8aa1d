package service

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("this email is already registered")
	ErrNotLoggedIn        = errors.New("not logged in")

	ErrInvalidName     = errors.New("name must be at least 2 characters long")
	ErrInvalidEmail    = errors.New("please enter a valid email address")
	ErrInvalidPassword = errors.New("password must be at least 6 characters long")

	ErrInvalidTitle    = errors.New("title must be 1-200 characters")
	ErrInvalidContent  = errors.New("content must be 1-10000 characters")
	ErrInvalidComment  = errors.New("comment must be 1-2000 characters")
	ErrMissingCategory = errors.New("category is required")

	ErrPostNotFound = errors.New("post not found")

	ErrRateLimited = errors.New("rate limit exceeded")

	ErrImageTooSmall     = errors.New("file is too small or corrupted")
	ErrImageTooLarge     = errors.New("file size too large, must be under 2MB")
	ErrImageBadFormat    = errors.New("unsupported image format")
	ErrImageBadName      = errors.New("invalid file name")
	ErrImageBadDims      = errors.New("invalid image dimensions")
	ErrImageDimsTooLarge = errors.New("image dimensions too large, must be at most 10000x10000 pixels")
	ErrImageEncode       = errors.New("failed to generate image data")
	ErrNotSVG            = errors.New("file does not appear to be a valid SVG")
)
