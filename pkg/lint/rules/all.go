// Package rules registers all lint rules with the global registry.
//
// Import this package to trigger the init() functions in every rule package:
//
//	import _ "github.com/leapstack-labs/uselint/pkg/lint/rules"
package rules

import (
	// Import rule categories - each registers its rules via init()
	_ "github.com/leapstack-labs/uselint/pkg/lint/rules/ordering"
	_ "github.com/leapstack-labs/uselint/pkg/lint/rules/redundancy"
)
