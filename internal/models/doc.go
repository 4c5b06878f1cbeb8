// Package models defines the core domain models for the Ekub ledger.
//
// # Models
//
//   - User: Registered account; every user owns exactly one Wallet
//   - Wallet: Per-user balance, mutated only through the wallet ledger
//   - Transaction: Append-only ledger entry (credit or debit)
//   - Group: A rotating savings circle (Ekub) with its ordered roster
//   - Slot: One member's position in a group's payout rotation
//
// # Design Principles
//
// 1. **Money is decimal**: all amounts use shopspring/decimal, never float64
// 2. **IDs, not pointers**: relationships are expressed with ID strings
// 3. **Roster is typed**: slots are structured records, not an encoded blob
package models
