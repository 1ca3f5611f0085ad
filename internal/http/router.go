package api

import (
	"log"
	stdhttp "net/http"

	intconfig "backoffice/internal/config"
	h "backoffice/internal/http/handlers"
	"backoffice/internal/http/middleware"
	"backoffice/internal/services"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.Static("/uploads", env.UploadDir)

	tokens := services.TokenService{Secret: []byte(env.JWTSecret)}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth; the refresh endpoint stays outside RequireStaff so an
		// expired access token can still be exchanged.
		api.POST("/admin-login", h.AdminLogin)
		api.POST("/token/refresh", h.TokenRefresh)

		// Public enquiry forms posted by the site.
		api.POST("/enquiry-form", h.CreateEnquiry)
		api.POST("/holiday-form", h.CreateHolidayEnquiry)
		api.POST("/umrah-form", h.CreateUmrahEnquiry)

		// Public catalog reads for the site.
		api.GET("/visas", h.GetVisas)
		api.GET("/packages", h.GetPackages)

		admin := api.Group("")
		admin.Use(middleware.RequireStaff(tokens))
		{
			countries := admin.Group("/countries")
			countries.GET("", h.GetCountries)
			countries.GET("/:id", h.GetCountryByID)
			countries.POST("", h.CreateCountry)
			countries.PUT("/:id", h.UpdateCountry)
			countries.DELETE("/:id", h.DeleteCountry)

			visas := admin.Group("/visas")
			visas.GET("/:id", h.GetVisaByID)
			visas.POST("", h.CreateVisa)
			visas.PUT("/:id", h.UpdateVisa)
			visas.PATCH("/:id", h.PatchVisa)
			visas.DELETE("/:id", h.DeleteVisa)

			applications := admin.Group("/visa-applications")
			applications.GET("", h.GetVisaApplications)
			applications.GET("/:id", h.GetVisaApplicationByID)
			applications.POST("", h.CreateVisaApplication)
			applications.PUT("/:id", h.UpdateVisaApplication)
			applications.DELETE("/:id", h.DeleteVisaApplication)
			applications.GET("/:id/summary-pdf", h.GetVisaApplicationSummaryPDF)

			applicants := admin.Group("/visa-applicants")
			applicants.POST("", h.CreateVisaApplicant)
			applicants.PATCH("/:id", h.PatchVisaApplicant)
			applicants.DELETE("/:id", h.DeleteVisaApplicant)

			documents := admin.Group("/additional-documents")
			documents.POST("", h.CreateAdditionalDocument)
			documents.DELETE("/:id", h.DeleteAdditionalDocument)

			destinations := admin.Group("/destinations")
			destinations.GET("", h.GetDestinations)
			destinations.GET("/:id", h.GetDestinationByID)
			destinations.POST("", h.CreateDestination)
			destinations.PUT("/:id", h.UpdateDestination)
			destinations.DELETE("/:id", h.DeleteDestination)

			umrahDestinations := admin.Group("/umrah-destinations")
			umrahDestinations.GET("", h.GetUmrahDestinations)
			umrahDestinations.POST("", h.CreateUmrahDestination)
			umrahDestinations.PUT("/:id", h.UpdateUmrahDestination)
			umrahDestinations.DELETE("/:id", h.DeleteUmrahDestination)

			startingCities := admin.Group("/starting-cities")
			startingCities.GET("", h.GetStartingCities)
			startingCities.POST("", h.CreateStartingCity)
			startingCities.PUT("/:id", h.UpdateStartingCity)
			startingCities.DELETE("/:id", h.DeleteStartingCity)

			nationalities := admin.Group("/nationalities")
			nationalities.GET("", h.GetNationalities)
			nationalities.POST("", h.CreateNationality)
			nationalities.PUT("/:id", h.UpdateNationality)
			nationalities.DELETE("/:id", h.DeleteNationality)

			suppliers := admin.Group("/suppliers")
			suppliers.GET("", h.GetSuppliers)
			suppliers.GET("/:id", h.GetSupplierByID)
			suppliers.POST("", h.CreateSupplier)
			suppliers.PUT("/:id", h.UpdateSupplier)
			suppliers.DELETE("/:id", h.DeleteSupplier)

			packages := admin.Group("/packages")
			packages.GET("/:id", h.GetPackageByID)
			packages.POST("", h.CreatePackage)
			packages.PUT("/:id", h.UpdatePackage)
			packages.PATCH("/:id", h.PatchPackage)
			packages.DELETE("/:id", h.DeletePackage)
			packages.GET("/:id/itinerary", h.GetPackageItinerary)
			packages.POST("/:id/itinerary/sync", h.SyncPackageItinerary)
			packages.POST("/:id/itinerary/apply-template", h.ApplyItineraryTemplate)

			masters := admin.Group("/itinerary-masters")
			masters.GET("", h.GetItineraryMasters)
			masters.GET("/:id", h.GetItineraryMasterByID)
			masters.POST("", h.CreateItineraryMaster)
			masters.PUT("/:id", h.UpdateItineraryMaster)
			masters.DELETE("/:id", h.DeleteItineraryMaster)

			users := admin.Group("/users")
			users.GET("", h.GetUsers)
			users.GET("/:id", h.GetUserByID)
			users.POST("", h.CreateUser)
			users.PUT("/:id", h.UpdateUser)
			users.DELETE("/:id", h.DeleteUser)

			enquiries := admin.Group("/enquiry-form")
			enquiries.GET("", h.GetEnquiries)
			enquiries.DELETE("/:id", h.DeleteEnquiry)

			holidayForms := admin.Group("/holiday-form")
			holidayForms.GET("", h.GetHolidayEnquiries)
			holidayForms.DELETE("/:id", h.DeleteHolidayEnquiry)

			umrahForms := admin.Group("/umrah-form")
			umrahForms.GET("", h.GetUmrahEnquiries)
			umrahForms.DELETE("/:id", h.DeleteUmrahEnquiry)
		}
	}

	h.SetRouter(r)
	return r
}
