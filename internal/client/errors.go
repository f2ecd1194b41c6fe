package client

import "errors"

// ErrMissingDependencies is returned by NewApp without a controller or view.
var ErrMissingDependencies = errors.New("preview app: controller and view are required")
