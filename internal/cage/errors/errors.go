// Copyright (C) 2019 The CodeActual Go Environment Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-stack/stack"
	"github.com/pkg/errors"
)

// causer is a copy of the pkg/errors interface.
type causer interface {
	Cause() error
}

// stackTracer is a copy of the pkg/errors interface.
type stackTracer interface {
	StackTrace() errors.StackTrace
}

// Event aims to provide error detail for inclusion in a structured log.
//
// It omits a time value, assuming the structured logger will include it.
type Event struct {
	// Loc is the event creation site.
	Loc Location

	// Errors holds one or more errors collected at the event creation site.
	Errors []Error
}

type Location struct {
	// File is an absolute path or relative path from GOROOT/GOPATH.
	File string

	Func string
	Line string
	Pkg  string
}

type Error struct {
	// Msg is the topmost error's own message, without the messages of its causes appended.
	Msg string

	// Loc is the error creation site, if available (e.g. from pkg/errors).
	Loc Location

	// Cause holds the errors leading to this one, nearest first, if available (e.g. from pkg/errors).
	//
	// Links in the chain which carry no creation site, e.g. from errors.WithMessage, are omitted.
	Cause []Error `json:",omitempty"`
}

// NewEvent returns an Event located at the caller.
func NewEvent(errs ...error) *Event {
	caller := stack.Caller(1)

	event := &Event{
		Loc: Location{
			File: fmt.Sprintf("%#s", caller), // use full path to support modules
			Func: fmt.Sprintf("%n", caller),
			Line: fmt.Sprintf("%d", caller),
			Pkg:  fmt.Sprintf("%k", caller),
		},
	}

	for _, err := range errs {
		if err != nil {
			event.Errors = append(event.Errors, newError(err))
		}
	}

	return event
}

func newError(err error) Error {
	var links []error
	var locs []Location

	for err != nil {
		if loc, ok := errorLocation(err); ok || len(links) == 0 {
			links = append(links, err)
			locs = append(locs, loc)
		}

		c, ok := err.(causer)
		if !ok {
			break
		}
		cause := c.Cause()
		if cause == err {
			break
		}
		err = cause
	}

	// Trim each link's message of the messages appended from deeper links.
	msgs := make([]string, len(links))
	for n := range links {
		msgs[n] = links[n].Error()
		if n+1 < len(links) {
			msgs[n] = strings.TrimSuffix(msgs[n], ": "+links[n+1].Error())
		}
	}

	computed := Error{Msg: msgs[0], Loc: locs[0]}
	for n := 1; n < len(links); n++ {
		computed.Cause = append(computed.Cause, Error{Msg: msgs[n], Loc: locs[n]})
	}

	return computed
}

func errorLocation(err error) (Location, bool) {
	e, ok := err.(stackTracer)
	if !ok {
		return Location{}, false
	}

	frames := e.StackTrace()
	if len(frames) == 0 {
		return Location{}, false
	}

	f := frames[0]
	funcName := fmt.Sprintf("%n", f)
	loc := Location{
		Func: funcName,
		Line: fmt.Sprintf("%d", f),
	}

	// "%+s" is "<pkg>.<func>\n\t<file>"
	if parts := strings.SplitN(fmt.Sprintf("%+s", f), "\n\t", 2); len(parts) == 2 {
		loc.Pkg = strings.TrimSuffix(parts[0], "."+funcName)
		loc.File = parts[1]
	}

	return loc, true
}

func WriteErrList(w io.Writer, errs ...error) {
	errsLen := len(errs)
	if errsLen > 0 {
		fmt.Fprintf(w, "\n") // in case the cursor at the end of a "starting X ..." line
		for n, err := range errs {
			fmt.Fprintf(w, "Error (%d/%d): %s\n", n+1, errsLen, err)
		}
	}
}

func Append(errs *[]error, err error) bool {
	if err != nil {
		*errs = append(*errs, err)
		return true
	}
	return false
}
