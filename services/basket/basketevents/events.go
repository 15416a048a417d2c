package basketevents

const (
	TopicName       = "basket"
	itemAddedName   = TopicName + ".item.added"
	itemRemovedName = TopicName + ".item.removed"
)

type ItemAdded struct {
	ProductUID string
	Price      int
}

func (e ItemAdded) GetEventTypeName() string {
	return itemAddedName
}

func (e ItemAdded) GetAggregateName() string {
	return e.ProductUID
}

type ItemRemoved struct {
	ProductUID string
}

func (e ItemRemoved) GetEventTypeName() string {
	return itemRemovedName
}

func (e ItemRemoved) GetAggregateName() string {
	return e.ProductUID
}
