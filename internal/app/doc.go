// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the rendering pipeline that turns a place
// query into a finished map image, decoupled from the CLI entrypoint.
package app
