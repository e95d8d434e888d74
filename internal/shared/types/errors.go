package types

import "errors"

var (
	ErrNoRegion      = errors.New("AWS_REGION is not set")
	ErrNoCredentials = errors.New("AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY are not set")
	ErrNoInstanceID  = errors.New("EC2_INSTANCE_ID is not set")
)
