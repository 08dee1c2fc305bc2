// Package commands implements the dining CLI: the serving schedule, the
// meals open for a hall and day, filtered menu views and publishing menu
// documents to the configured store.
package commands
