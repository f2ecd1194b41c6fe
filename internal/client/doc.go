// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal preview of the landing page.
//
// It loads the configuration through the landing controller, prints the page
// and, when a form was given on the command line, runs one registration
// through the configured dispatcher.
package client
