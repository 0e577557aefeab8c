// Package gitfeed provides top-level metadata for the GitFeed webhook API.
//
// @title GitFeed Webhook API
// @version 26.8.29.1
// @description Ingests GitHub webhook notifications, normalizes them into canonical events, and serves a time-cursor polling feed.
// @BasePath /
package gitfeed
