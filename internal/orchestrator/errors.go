package orchestrator

import "errors"

// Flag-syntax errors (malformed -Z, malformed --txid, conflicting
// transports) are caught by cmd/dog's flag wiring before a QueryPlan is
// ever built. ErrNoDomain is the CliError sentinel this file defines, since
// "at least one domain" is a QueryPlan invariant rather than something a
// flag parser alone can enforce. Run also reports unknown type and class
// names (the registry's own errors) and ErrNoNameserver with ExitCLIError.
var ErrNoDomain = errors.New("orchestrator: no domain provided")
