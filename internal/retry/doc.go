// Package retry implements the bounded retry procedure used to establish
// a verified connection to a Neo4j endpoint.
//
// The pieces compose through the interfaces in pkg/neoprobe:
//
//   - Executor drives the attempt loop: run the operation, classify the
//     failure, wait, repeat until success, a fatal error, or exhaustion.
//   - Neo4jErrorClassifier decides transient vs fatal. Only transient
//     failures (endpoint temporarily unreachable) are retried; auth
//     failures and malformed addresses propagate immediately.
//   - ConstantBackoff and ExponentialBackoff supply the delay between
//     attempts. Constant is the default; it matches waiting out container
//     startup ordering.
//
// MaxAttempts counts total attempts including the first, so a run that
// exhausts N attempts incurs exactly N-1 delays.
package retry
