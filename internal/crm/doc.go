// Package crm holds the line-of-business services of the client: personal
// tasks, shared price-update and ocean-freight notices, and back-office staff
// management. All of them are thin layers over the document store; staff
// management additionally creates provider accounts.
package crm
