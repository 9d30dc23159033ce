// Package commands defines the abook CLI and wires dependencies for its
// operations.
//
// Operations
//
//   - add                create a contact (prompts for fields)
//   - remove             delete a contact by username
//   - search id/name/email/number
//   - list               print every contact
//   - update             edit fields of a contact
//   - shell              interactive session running the same grammar
//   - backup / restore   encrypted vault snapshot of the whole book
//
// # Implementation
//
// The root command resolves the config and builds the dependency graph
// (stores, services) before anything runs. Contact operations are parsed by
// internal/command and executed by the Dispatcher, which is the only layer
// that turns store errors into display text.
package commands
