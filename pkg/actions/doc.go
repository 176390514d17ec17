// Package actions classifies raw listing differences into executable file
// system actions and puts them in an order that is safe to run sequentially.
//
// Classification works on the differences of all tracked directories at once
// so that a line removed from one listing and re-added in another becomes a
// single Move instead of a Delete followed by a Copy.
package actions
