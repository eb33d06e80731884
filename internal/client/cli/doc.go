// Package cli implements the interactive terminal shell of the store-rating
// client: a read–eval–print loop whose command set depends on the role of
// the logged-in user (administrator, end user, store owner). The shell owns
// navigation: after login it lands on the role's dashboard route and a
// session teardown throws it back to the login route.
package cli
