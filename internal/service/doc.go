// Package service contains application services that coordinate between
// stores and encode behavior spanning more than one collection.
package service
