// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the application runtime.
//
// It loads the domain services, starts the backup workers and the local API,
// and runs the terminal launcher in the foreground. In headless mode the
// launcher is skipped and the process waits for a termination signal. The
// -import and -export flags run a single backup action and exit.
package client
