package handler

import "errors"

var errNoHandlersAreCreated = errors.New("no handlers are created: empty server address in config")
