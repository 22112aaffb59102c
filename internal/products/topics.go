package products

import "strconv"

const TopicProductChanged = "product.changed"

// Partition key = product id, so every event for one product keeps its order.
func PartitionKey(productID int64) []byte {
	return []byte(strconv.FormatInt(productID, 10))
}
