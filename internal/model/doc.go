package model

// Package model defines domain data structures used across the app: vault
// documents, the signed-in session, upload drafts and their status enum.
// Structures are designed for direct binding in the UI and explicit state
// transitions.
