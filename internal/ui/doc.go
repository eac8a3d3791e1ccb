package ui

// Package ui implements the Fyne shell: window layout, menus, dialogs,
// theming, and translation strings. It drives the download service and the
// runtime acquisition check and displays what they report; no download or
// acquisition logic lives here.
