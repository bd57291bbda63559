// Package ui holds the templ components the site is built from.
package ui

//go:generate templ generate
