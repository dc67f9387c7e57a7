// Package scanner defines the core cookiescope scanning framework.
//
// Architecture overview:
//
//   - IsLooselyScoped and SameRegistrableDomain implement the
//     domain-comparison algorithm the tool exists for: deciding whether a
//     cookie's Domain attribute scopes it more broadly than the issuing
//     host. Both are pure functions over their arguments.
//   - LooselyScopedCookieRule ties the algorithm to an HTTP response:
//     extract the response's cookies (ResponseCookies), drop names on the
//     IgnoreList, flag the rest.
//   - HTTPScanner implements the Scanner interface (Scan + Name), fetching
//     one target and applying the rule; Runner coordinates concurrent
//     execution with rate limiting and invokes a shared AuditFunc per
//     target so every run produces consistent evidence.
//   - ScanResult models the telemetry stored in findings.json and consumed
//     by reports.
//
// This layout keeps the scope logic internal while allowing cmd/ to simply
// instantiate a scanner and feed it into the runner.
package scanner
