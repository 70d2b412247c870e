package promize

// Callback
// 延迟回调
//
// 由 Queue 在当前同步代码执行结束后按先进先出顺序执行，不会被内联执行。
type Callback func()

type callbackNode struct {
	callback Callback
	next     *callbackNode
}

// callbackList 先进先出回调链表，调用方负责加锁。
type callbackList struct {
	head *callbackNode
	tail *callbackNode
}

func (list *callbackList) push(callback Callback) {
	node := &callbackNode{callback: callback}
	if list.tail == nil {
		list.head = node
		list.tail = node
		return
	}
	list.tail.next = node
	list.tail = node
}

func (list *callbackList) pop() (callback Callback, ok bool) {
	node := list.head
	if node == nil {
		return
	}
	list.head = node.next
	if list.head == nil {
		list.tail = nil
	}
	callback, ok = node.callback, true
	node.callback = nil
	node.next = nil
	return
}
