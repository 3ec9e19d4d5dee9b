// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the quickly-elect command.

Quickly Elect runs a single election: an administrator registers voters,
voters submit proposals and cast one vote each, and the administrator moves
the election through its phases until the votes are tallied.

# Commands

	quickly-elect serve                 Run the HTTP API
	quickly-elect status                Replay the event log and print the state
	quickly-elect caller-key <address>  Print the X-Caller-Key for an address

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	ADMIN_ADDRESS=0x5B38... CALLER_KEY_SALT=... quickly-elect serve

Or with flags:

	quickly-elect serve -p 3318 -t postgres -d "postgres://..." --admin 0x5B38...

A .env file in the working directory is loaded first; real environment
variables and flags win over it.

# Configuration

Required settings:

  - ADMIN_ADDRESS (--admin): administrator address, fixed for the election
  - CALLER_KEY_SALT (--key-salt): secret for caller key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): connection string (default: quickly-elect.db for sqlite)
  - LOG_FORMAT (--log-format): auto, text or json (auto picks text on a terminal)

# Architecture

  - election: workflow state machine, registries and tally
  - db: connections, schema and the durable event log
  - metrics: Prometheus recorder fed by election events
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: caller authentication, CORS, logging, JSON helpers
  - models: Request/response types
  - auth: caller keys and address parsing
  - cliparse: Configuration parsing

On start the event log is replayed into a fresh election, so a restarted
server continues where it stopped.

See package documentation for each component.
*/
package main
