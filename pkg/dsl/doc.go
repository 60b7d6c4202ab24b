/*
Package dsl provides a fluent builder for constructing framework trees in Go.

It is an alternative to hand-writing JSON or nesting domain.Append calls, and is
mostly useful for seeding frameworks and writing tests.

Example usage:

	b := dsl.New()

	b.Add("T0001").
		Title("Reconnaissance").
		Describe("Gathering information about targets").
		Add("TQ0001").
		Title("OSINT").
		Add("P0001").
		Title("Social media scraping")

	b.Add("T0002").Title("Cash Out")

	root, err := b.Build()
*/
package dsl
