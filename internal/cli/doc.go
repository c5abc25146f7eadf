// Package cli implements the interactive storekeeper menu.
//
// Commands (number or name at the "storekeeper>" prompt):
//
//	1 register   register a new customer
//	2 ships      browse the spaceships in stock
//	3 order      order a spaceship for a customer
//	4 customer   view a customer (by ID or by browsing)
//	5 update     update one customer field
//	6 orders     browse a customer's orders
//	help         list the commands
//	7 exit|quit  leave
//
// Browsing prompts accept 0 or n for the next page, -1 or p for the previous
// page, q to go back, and an entry number to open its details. Errors from
// a command are turned into a one-line message by userMessage and the
// prompt comes back; exit and end of input stop the loop.
package cli
