// Package organizer plans and executes moves of identified media files into
// the library tree. Planning is pure and shared between preview and apply,
// so the paths a preview prints are exactly the paths an apply run writes.
package organizer
