// Package ordering contains lint rules about the relative placement of
// using directives within one scope.
//
// Import this package to register the rules:
//
//	import _ "github.com/leapstack-labs/uselint/pkg/lint/rules/ordering"
package ordering
