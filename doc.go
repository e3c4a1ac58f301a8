// Package mailtogo builds mailto: links from structured message drafts.
//
// A draft's body is a small tree of text, line breaks, indented blocks and
// nested bullet lists. It is flattened to plain text, percent-encoded and
// combined with recipients, subject and carbon copies into a mailto URI, or
// bound to a trigger to render an HTML anchor that can hide the address
// until it is clicked.
//
// Key subpackages:
//
//	github.com/pixelvide/mailto-go/pkg/content    - Body tree nodes, plain-text serializer, JSON tree codec
//	github.com/pixelvide/mailto-go/pkg/mailto     - Mailto URI builder
//	github.com/pixelvide/mailto-go/pkg/trigger    - Trigger binding and anchor rendering
//	github.com/pixelvide/mailto-go/pkg/compose    - Drafts and the traced compose pipeline
//	github.com/pixelvide/mailto-go/pkg/cache      - Link cache (redis, database)
//	github.com/pixelvide/mailto-go/pkg/httpserver - HTTP API
//	github.com/pixelvide/mailto-go/pkg/mail       - Mail delivery (log, smtp)
//	github.com/pixelvide/mailto-go/pkg/config     - Configuration structs
//
// Example Usage:
//
//	package main
//
//	import (
//		"fmt"
//
//		"github.com/pixelvide/mailto-go/pkg/content"
//		"github.com/pixelvide/mailto-go/pkg/mailto"
//	)
//
//	func main() {
//		body := content.NewRoot(
//			content.NewText("Hello"),
//			content.Break(),
//			content.List(content.ItemText("Agenda"), content.ItemText("Notes")),
//		)
//		link := mailto.BuildLink(mailto.NormalizeRecipients("team@example.com"), mailto.Headers{
//			Subject: "Weekly sync",
//			Body:    content.Serialize(body),
//		})
//		fmt.Println(link)
//	}
package mailtogo
