package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"user_id",
			"train_id",
			"line_items",
			"status",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "long",
				"minimum":  1,
			},

			"user_id": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 30,
			},

			"train_id": bson.M{
				"bsonType":  "string",
				"minLength": 4,
				"maxLength": 12,
			},

			"line_items": bson.M{
				"bsonType": "array",
				"minItems": 1,
				"items": bson.M{
					"bsonType": "object",
					"required": []string{
						"category",
						"quantity_booked",
						"quantity_active",
						"unit_fare_paise",
					},
					"properties": bson.M{
						"category": bson.M{
							"bsonType": "string",
							"enum": []string{
								"adult",
								"child",
								"senior",
								"infant",
							},
						},
						"quantity_booked": bson.M{
							"bsonType": "int",
							"minimum":  1,
						},
						"quantity_active": bson.M{
							"bsonType": "int",
							"minimum":  0,
						},
						"unit_fare_paise": bson.M{
							"bsonType": "long",
							"minimum":  0,
						},
					},
				},
			},

			"status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"active",
					"partially_cancelled",
					"fully_cancelled",
				},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
