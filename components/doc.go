// Package components holds the classroom exercises: small presentational
// components that render props, derive local state and re-render when an
// event handler changes that state.
//
// Props are exported struct fields tagged with `prop`. State slots are
// created in OnInit and changed only from handler methods.
package components
