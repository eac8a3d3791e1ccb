package model

// Package model contains the data types shared between the download worker,
// the runtime acquisition check, and the UI layer.
