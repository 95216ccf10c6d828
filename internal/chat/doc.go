// Package chat maintains the append-only transcript shown in the companion
// chat panel. Replies are a configured canned string; no message is ever
// interpreted.
package chat
