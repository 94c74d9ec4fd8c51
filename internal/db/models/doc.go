// Package models contains database model definitions.
//
// Every content model carries a system-assigned ID and a CreatedAt timestamp
// which is written on insert only.
package models
