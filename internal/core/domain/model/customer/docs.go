// Package customer implements the Customer aggregate for the atelier domain.
// Customers are the clients garments are tailored for; their contact details
// feed order intake and delivery.
package customer
