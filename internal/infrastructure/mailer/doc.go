// Package mailer sends email through an SMTP server or, when mail is
// disabled, writes it to the log. Notifier runs deliveries in the background.
package mailer
