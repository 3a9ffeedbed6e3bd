package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the metadata, download, conversion and history
// services. All UI strings are localized via Localization.
