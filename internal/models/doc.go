// Package models defines the core domain models for splitledger.
//
// # Stored Models
//
//   - Expense: one recorded payment made by a participant on behalf of the group
//
// # Derived Models
//
// The following are recomputed from an expense snapshot on every read and are
// never persisted:
//   - Balance: a participant's net position against the equal share
//   - Settlement: a suggested payment from a debtor to a creditor
//   - CategoryTotal, MonthlyTotal: spending summaries
//
// Participants are not a model of their own. They are the distinct set of
// Expense.PaidBy values, identified by name.
package models
