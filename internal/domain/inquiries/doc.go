// Package inquiries covers everything visitors submit through the public
// site (contact messages, partnership requests and volunteer sign-ups) and
// the admin replies and notifications they trigger.
package inquiries
