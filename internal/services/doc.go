// Package services implements the business logic layer between the HTTP
// transport and the storage/reporting packages. Handlers stay thin; the
// services own data access, caching and error classification.
package services
