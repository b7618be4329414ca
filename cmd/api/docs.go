package main

// @title Facility Services API
// @version 1.0
// @description Winter service cost estimates, ice risk and snowfall outlooks, address lookup and the contact form of the facility services website.

// @contact.name API Support
// @contact.email webmaster@example.de

// @host localhost:8080
// @BasePath /
// @schemes http https
