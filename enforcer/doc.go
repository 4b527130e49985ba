// Package enforcer audits every repository in a GitHub organization
// against the naming conventions policy and the standard license file.
//
// The enforcer never mutates repositories: naming fixes and license
// updates are reported as "would" actions, and the only write it
// performs is filing or refreshing a pinned "Naming convention
// violations" issue when that is enabled.
package enforcer
