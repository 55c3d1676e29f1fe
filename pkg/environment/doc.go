// Package environment carries the deployment stage (development, staging,
// production) through configuration, request contexts and log records.
package environment
