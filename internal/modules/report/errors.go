package report

import "errors"

var ErrUnknownType = errors.New("unknown report type")
