package ytcomments

import "errors"

var (
	ErrQuotaExceeded    = errors.New("ytcomments: quota exceeded")
	ErrNotFound         = errors.New("ytcomments: not found")
	ErrCommentsDisabled = errors.New("ytcomments: comments disabled")
	ErrInvalidResponse  = errors.New("ytcomments: invalid response")
	ErrInvalidTable     = errors.New("ytcomments: invalid table")
)
