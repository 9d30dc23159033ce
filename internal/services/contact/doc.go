// Package contact implements the contact book's record store.
//
// The service owns the durable line store exclusively: every operation loads
// a fresh full snapshot, and mutating operations perform exactly one full
// rewrite. Usernames are unique, case-sensitively, across the book. A line
// that fails to decode aborts the whole operation; records are never
// silently dropped.
package contact
