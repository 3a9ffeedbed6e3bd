package model

// Package model defines domain data structures used across the app: download
// requests, video metadata, quality levels, and status enums. Structures are
// designed for direct binding in the UI and explicit state transitions.
