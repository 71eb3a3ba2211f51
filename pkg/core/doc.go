// Package core contains channel plumbing helpers used to feed and drain
// asynchronous stages: ToChan/ToChanMany turn values into a stream, and
// FromChanFirstOrDefault/FromChanMany collect it back.
package core
