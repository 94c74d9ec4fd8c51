// Package main is the entry point of the Metropolitan website backend.
// It serves the public content API (case studies, news, testimonials,
// inquiries and job applications) and the JWT protected admin API
// on top of a gorm backed database.
package main
